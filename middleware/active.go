package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/realjeremy04/Skincare-Mobile-BE/db"
	"github.com/realjeremy04/Skincare-Mobile-BE/models"
	"github.com/realjeremy04/Skincare-Mobile-BE/redis"
	"github.com/realjeremy04/Skincare-Mobile-BE/utils"
)

const activeCacheTTL = time.Minute

// ActiveAccount requires Protected (or CookieProtected) to have run first.
// It does a live lookup of the account's active flag so that deactivation
// takes effect immediately, unlike the token-embedded role claim.
func ActiveAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountID, ok := c.Locals("accountID").(uint)
		if !ok {
			return utils.Unauthorized("Missing authentication token")
		}

		key := ActiveCacheKey(accountID)
		if cached, found := redis.Get(key); found {
			if cached == "1" {
				return c.Next()
			}
			return utils.Forbidden("Account is deactivated")
		}

		var account models.Account
		if db.DB.First(&account, accountID).RowsAffected == 0 {
			return utils.Unauthorized("Account no longer exists")
		}

		if account.IsActive {
			redis.Set(key, "1", activeCacheTTL)
			return c.Next()
		}

		redis.Set(key, "0", activeCacheTTL)
		return utils.Forbidden("Account is deactivated")
	}
}

// ActiveCacheKey is exported so account updates can invalidate the cache.
func ActiveCacheKey(accountID uint) string {
	return fmt.Sprintf("account:active:%d", accountID)
}
