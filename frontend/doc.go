// Package frontend exposes the browser-side reporting configuration.
//
// The payload comes from reporting.Gate.ClientSettings and therefore already
// carries the environment name and the current person. Pages either embed
// Renderer.Snippet or fetch Renderer.Handler's JSON. Nothing is exposed
// unless the gate reports IsEnabledForFrontend.
package frontend
