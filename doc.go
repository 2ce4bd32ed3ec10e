// Package fundwatch tracks the monthly portfolio disclosures of a mutual
// fund and computes how individual holdings move from one month to the next.
//
// The core functionalities include:
//   - Extraction: reading a fund house's monthly disclosure spreadsheet and
//     normalizing its fixed template into typed holding records.
//   - The Book: a keyed store mapping a month label (e.g. "September 2024")
//     to that month's full list of holdings, persisted as a single JSON file
//     whose shape is stable across versions.
//   - Change Reports: joining two months by ISIN and computing the change in
//     quantity, market value and %-to-NAV for every holding matching a fund
//     name query.
//
// This package serves as the foundational logic for the `fw` command-line
// tool; rendering lives in the renderer package and the CLI in cmd.
package fundwatch
