// File: handlers/bundle.go
package handlers

import (
	userRepoPkg "letslink/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Account endpoints
	RegisterHandler       gin.HandlerFunc
	SignInHandler         gin.HandlerFunc
	SignOutHandler        gin.HandlerFunc
	GetMeHandler          gin.HandlerFunc
	UpdateProfileHandler  gin.HandlerFunc
	UpdatePasswordHandler gin.HandlerFunc
	DeleteUserHandler     gin.HandlerFunc
	UploadAvatarHandler   gin.HandlerFunc

	// Group endpoints
	CreateGroupHandler  gin.HandlerFunc
	ListGroupsHandler   gin.HandlerFunc
	GetGroupHandler     gin.HandlerFunc
	LeaveGroupHandler   gin.HandlerFunc
	CreateInviteHandler gin.HandlerFunc
	JoinByInviteHandler gin.HandlerFunc

	// Plan endpoints
	CreatePlanHandler gin.HandlerFunc
	ListPlansHandler  gin.HandlerFunc
	GetPlanHandler    gin.HandlerFunc
	DeletePlanHandler gin.HandlerFunc

	// Availability endpoints
	SubmitAvailabilityHandler gin.HandlerFunc
	GetMyRecordsHandler       gin.HandlerFunc
	UpdateRecordHandler       gin.HandlerFunc
	DeleteRecordHandler       gin.HandlerFunc
	GetChartHandler           gin.HandlerFunc
	GetTimelineHandler        gin.HandlerFunc

	// Preset endpoints
	ListPresetsHandler  gin.HandlerFunc
	CreatePresetHandler gin.HandlerFunc
	UpdatePresetHandler gin.HandlerFunc
	DeletePresetHandler gin.HandlerFunc
}
