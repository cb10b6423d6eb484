// Package assets embeds the stylesheets applied to rendered documents when
// the caller does not supply one.
//
// Styles live in styles/<name>.css and are addressed by bare name:
//
//	css, err := assets.LoadStyle("markdown")
package assets
