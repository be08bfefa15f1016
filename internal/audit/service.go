package audit

import (
	"encoding/json"

	"agrofarm-backend/internal/auth"
	"agrofarm-backend/internal/database"
	"agrofarm-backend/internal/logger"
	"agrofarm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LogOptions struct {
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// jsonb columns want the literal "null", not an empty string
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	return database.DB.Create(&entry).Error
}

// Write records an audit entry for the authenticated request. Audit failures
// are logged and swallowed; they never fail the business operation.
func Write(c *fiber.Ctx, entityType, entityID string, action models.AuditAction, description string, before, after any) {
	userID, err := auth.CurrentUserID(c)
	if err != nil {
		userID = 0
	}

	err = WriteLog(LogOptions{
		UserID:      userID,
		UserName:    auth.CurrentUsername(c),
		EntityType:  entityType,
		EntityID:    entityID,
		Action:      action,
		Description: description,
		Before:      before,
		After:       after,
	})
	if err != nil {
		logger.L.Warnw("audit log write failed",
			"entity_type", entityType, "entity_id", entityID, "error", err)
	}
}
