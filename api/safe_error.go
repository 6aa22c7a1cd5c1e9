package api

import (
	"menucatalog/config"
)

// SafeErrorMessage hides internal error details from clients when the
// server runs in release mode.
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}
