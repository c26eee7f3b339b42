// Package ui contains the Fyne desktop frontend: a URL entry, download and
// cancel buttons, a notification panel and the status log that renders relay
// lines in arrival order.
package ui
