package handlers

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	Status   *StatusHandler
	Schedule *ScheduleHandler
	Content  *ContentHandler
	Settings *SettingsHandler
	Chat     *ChatHandler
	Storage  *StorageHandler
}
