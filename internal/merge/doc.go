// Package merge pairs verbose play codes with their skeleton counterparts
// and substitutes them in file order.
package merge
