// Package fundview provides the analysis functions behind the ddf fund
// comparison dashboard.
//
// The core functionalities include:
//   - Growth Rates: compound annual growth rate (CAGR) of a price series,
//     computed on calendar months, and the annualized return shown in the
//     dashboard's returns tab.
//   - Normalization: rebasing a collection of price series onto a common base
//     value at the first date where every series has a price.
//   - Selection: picking the top, bottom or a random subset of funds from a
//     rank table.
//   - Responsive Layouts: patching a chart layout for narrow viewports.
//   - Data Preparation: loading fund prices from CSV or XLSX tables and
//     building the per-group payload and chart figures consumed by the
//     dashboard page.
//
// The four analysis functions never mutate their inputs and keep no state, so
// they are safe for concurrent use.
//
// This package serves as the foundational logic for the `ddf` command-line
// tool.
package fundview
