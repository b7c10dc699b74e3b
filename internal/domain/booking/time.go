package booking

import "time"

// NormalizeTime completa HH:MM com os segundos (HH:MM:SS).
// Entradas já completas passam intactas.
func NormalizeTime(t string) string {
	if len(t) == 5 {
		return t + ":00"
	}
	return t
}

func IsValidTime(t string) bool {
	_, err := time.Parse("15:04:05", t)
	return err == nil
}

func IsValidDate(d string) bool {
	_, err := time.Parse("2006-01-02", d)
	return err == nil
}
