// Package ids centralizes ID minting so stores and services never reach for a
// generator directly.
package ids

import "github.com/google/uuid"

func New() string {
	return uuid.NewString()
}
