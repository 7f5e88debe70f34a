package usecase

// digitsOnly reports whether s has exactly n characters, all ASCII digits.
func digitsOnly(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidateDNI checks the 8-digit national identity number printed on a
// simplified receipt.
func ValidateDNI(dni string) bool {
	return digitsOnly(dni, 8)
}

// ValidateRUC checks the 11-digit tax registration number printed on an
// invoice.
func ValidateRUC(ruc string) bool {
	return digitsOnly(ruc, 11)
}
