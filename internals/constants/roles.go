package constants

import "fmt"

const (
	RoleAdmin  = "admin"
	RoleUstadz = "ustadz"
	RoleOrtu   = "ortu"
	RoleSantri = "santri"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyUstadzCanAccess = "❌ Hanya ustadz atau admin yang boleh mengakses fitur %s."
	ErrOnlyOrtuCanAccess   = "❌ Hanya orang tua atau admin yang boleh mengakses fitur %s."
	ErrOnlySantriCanAccess = "❌ Hanya santri atau admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorUstadz(feature string) string {
	return fmt.Sprintf(ErrOnlyUstadzCanAccess, feature)
}

func RoleErrorOrtu(feature string) string {
	return fmt.Sprintf(ErrOnlyOrtuCanAccess, feature)
}

func RoleErrorSantri(feature string) string {
	return fmt.Sprintf(ErrOnlySantriCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleUstadz,
		RoleOrtu,
		RoleSantri,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	UstadzAndAdmin = []string{
		RoleUstadz,
		RoleAdmin,
	}

	OrtuAndAdmin = []string{
		RoleOrtu,
		RoleAdmin,
	}

	SantriAndAdmin = []string{
		RoleSantri,
		RoleAdmin,
	}

	AdminUstadzSantri = []string{
		RoleAdmin,
		RoleUstadz,
		RoleSantri,
	}
)

// IsValidRole cek apakah role termasuk set role yang dikenal.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
