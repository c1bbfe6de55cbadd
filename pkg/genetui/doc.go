// Package genetui provides the interactive terminal interface for editing a
// gene ledger and watching its bar chart animate.
//
// It uses the Bubble Tea framework: [Model] owns the form inputs, the
// ledger, the chart renderer and the notice banner, and [App] runs the model
// as a full-screen program with mouse support.
package genetui
