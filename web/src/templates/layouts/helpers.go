package layouts

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title, siteName string) string {
	if title != "" && title != siteName {
		return title + " | " + siteName
	}
	return siteName
}
