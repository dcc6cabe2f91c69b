// Package preview renders widget trees built by the headless toolkit as plain
// text outlines or standalone HTML pages, and canonical markup trees as JSON.
package preview
