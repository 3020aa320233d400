package auth

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hafalanku_backend/internals/constants"
	helper "hafalanku_backend/internals/helpers"
)

// IsAdmin hanya admin.
func IsAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return err
		}
		if user.Role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Admin only")
		}
		return c.Next()
	}
}

// IsUstadzOrAdmin: admin bebas; ustadz boleh lewat untuk route hafalan
// (param :id adalah santri), selain itu hanya profilnya sendiri.
func IsUstadzOrAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return err
		}
		if user.Role == constants.RoleAdmin {
			return c.Next()
		}
		if user.Role != constants.RoleUstadz {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden")
		}

		paramID := paramUint(c, "id")
		if paramID == 0 {
			return c.Next()
		}
		if strings.Contains(c.OriginalURL(), "/hafalan") {
			return c.Next()
		}
		if paramID != user.RoleID {
			return fiber.NewError(fiber.StatusForbidden, "Tidak punya akses ke data ini")
		}
		return c.Next()
	}
}

// IsOrtuOrAdmin: ortu hanya boleh akses datanya sendiri.
func IsOrtuOrAdmin() fiber.Handler {
	return ownProfileOrAdmin(constants.RoleOrtu)
}

// IsSantriOrAdmin: santri hanya boleh akses datanya sendiri.
func IsSantriOrAdmin() fiber.Handler {
	return ownProfileOrAdmin(constants.RoleSantri)
}

// IsAdminUstadzSantri: cukup salah satu dari tiga role.
func IsAdminUstadzSantri() fiber.Handler {
	return OnlyRolesSlice("Forbidden", constants.AdminUstadzSantri)
}

func ownProfileOrAdmin(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return err
		}
		if user.Role == constants.RoleAdmin {
			return c.Next()
		}
		if user.Role != role {
			return fiber.NewError(fiber.StatusForbidden, "Forbidden")
		}
		paramID := paramUint(c, "id")
		if paramID != 0 && paramID != user.RoleID {
			return fiber.NewError(fiber.StatusForbidden, "Tidak punya akses ke data ini")
		}
		return c.Next()
	}
}

func paramUint(c *fiber.Ctx, name string) uint {
	raw := c.Params(name)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(n)
}
