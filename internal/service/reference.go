package service

import "github.com/india-resources/directory-api/internal/db"

// IndianStates lists the states and union territories an item can belong to,
// plus the country-wide "All India" entry.
var IndianStates = []string{
	"All India", "Andaman and Nicobar Islands", "Andhra Pradesh", "Arunachal Pradesh",
	"Assam", "Bihar", "Chandigarh", "Chhattisgarh",
	"Dadra and Nagar Haveli and Daman and Diu", "Delhi", "Goa", "Gujarat",
	"Haryana", "Himachal Pradesh", "Jammu and Kashmir", "Jharkhand", "Karnataka",
	"Kerala", "Ladakh", "Lakshadweep", "Madhya Pradesh", "Maharashtra", "Manipur",
	"Meghalaya", "Mizoram", "Nagaland", "Odisha", "Puducherry", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh",
	"Uttarakhand", "West Bengal",
}

// AvailableIcons lists the icon names the presentation layer can render.
var AvailableIcons = []string{
	"Globe", "Smartphone", "Calculator", "Briefcase", "Train", "CreditCard",
	"Building", "Shield", "Flame", "Heart", "Users", "Baby", "MapPin", "Phone",
	"Mail", "Home", "Car", "Plane", "Book", "GraduationCap", "Hospital",
	"Stethoscope", "Banknote", "Landmark", "Scale", "Gavel", "FileText",
	"Settings", "Wifi", "Zap", "Leaf", "TreePine", "Camera", "Music", "Palette",
	"Award", "Star", "Flag", "Target", "Clock",
}

var defaultURLCategories = []string{
	"Central Government", "State Government", "Digital Services",
	"Finance & Banking", "Employment & Jobs", "Transport & Travel",
	"Identity & Documents", "Healthcare & Medical", "Education & Learning",
	"Agriculture & Farming", "Business & Commerce", "Legal & Judiciary",
	"Social Welfare", "Tax & Revenue", "Public Services", "Tourism & Culture",
	"Environment & Forest", "Energy & Power", "Communication & IT",
	"Defense & Security",
}

var defaultContactCategories = []string{
	"Emergency", "Support & Helpline", "Information & Services", "Local Police",
	"Government Offices", "Healthcare Services", "Educational Institutions",
	"Utility Services", "Transportation", "Banking & Finance",
	"Consumer Services", "Tourist Services", "Disaster Management",
	"Anti-Corruption", "Cyber Crime", "Women & Child Safety",
	"Senior Citizen Helpline", "Agriculture & Farming", "Animal Welfare",
	"Blood Banks", "Legal Aid", "Public Grievances",
}

// DefaultCategories returns a copy of the fixed category list for a kind.
func DefaultCategories(kind db.ItemKind) []string {
	var defaults []string
	if kind == db.KindContact {
		defaults = defaultContactCategories
	} else {
		defaults = defaultURLCategories
	}
	out := make([]string, len(defaults))
	copy(out, defaults)
	return out
}

// IsDefaultCategory reports whether name is one of the fixed categories for a kind.
func IsDefaultCategory(kind db.ItemKind, name string) bool {
	for _, c := range DefaultCategories(kind) {
		if c == name {
			return true
		}
	}
	return false
}

// IsValidState reports whether name is a known state entry.
func IsValidState(name string) bool {
	for _, s := range IndianStates {
		if s == name {
			return true
		}
	}
	return false
}
