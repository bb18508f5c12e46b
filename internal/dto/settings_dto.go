package dto

// UpdateSettingsQuery carries the settings upsert parameters. Both are query
// parameters on the wire.
type UpdateSettingsQuery struct {
	Currency    string  `form:"currency" binding:"required"`
	ManagerCode *string `form:"manager_code"`
}

type SettingsFilter struct {
	ManagerCode *string `form:"manager_code"`
}
