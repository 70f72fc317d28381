// Package assets provides embedded document assets: the HTML skeleton
// template, the form stylesheet, and the localization tables.
package assets
