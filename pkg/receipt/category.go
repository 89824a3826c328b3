package receipt

import (
	"strings"
)

var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Groceries", []string{"woolworths", "coles", "aldi", "iga", "foodworks", "grocery", "supermarket"}},
	{"Transport", []string{"bp ", "shell", "caltex", "ampol", "7-eleven", "united petroleum", "fuel", "petrol", "uber", "taxi"}},
	{"Dining", []string{"mcdonald", "kfc", "hungry jack", "subway", "domino", "cafe", "restaurant", "bakery"}},
	{"Health", []string{"chemist", "pharmacy", "priceline", "terry white", "medical"}},
	{"Utilities", []string{"telstra", "optus", "vodafone", "origin energy", "agl", "energy australia"}},
	{"Office", []string{"officeworks", "jb hi-fi", "bunnings", "stationery"}},
}

// DeriveCategory maps a merchant name to a spending category by keyword lookup.
func DeriveCategory(merchantName string) string {
	name := strings.ToLower(merchantName)
	if name == "" {
		return "Other"
	}
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(name, keyword) {
				return entry.category
			}
		}
	}
	return "Other"
}
