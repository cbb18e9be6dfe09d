package services

// Trigger labels and user-facing texts of the dashboard.
const (
	LabelAuthenticate    = "Authenticate"
	LabelAuthenticating  = "Authenticating..."
	LabelSubmit          = "Schedule Video"
	LabelSubmitting      = "Scheduling..."
	LabelGenerate        = "✨ Generate with AI"
	LabelGenerating      = "Thinking..."
	TextNoItems          = "No videos scheduled."
	TextListFailed       = "Failed to load scheduled videos. Check the database connection."
	TextServerOffline    = "Could not reach the server. Check that the backend is running."
	TextAuthComplete     = "Authentication complete! The page will be refreshed."
	TextAuthFailedPrefix = "Authentication error: "
	TextSummaryRequired  = "Please enter a summary for the AI."
	TextContentGenerated = "Content generated by AI!"
	TextAIFailedPrefix   = "AI error: "
	TextScheduled        = "Video scheduled successfully! (ID: %s)"
	TextScheduleFailed   = "Failed to schedule: "
	TextInvalidTimestamp = "Invalid date"
)
