package handler

const (
	jsonKeySuccess = "success"
	jsonKeyError   = "error"
	jsonKeyMessage = "message"
	jsonKeyFields  = "fields"
)

// Response texts. The public-facing ones are frozen; the frontend matches
// on them.
const (
	msgInvalidCredentials = "Invalid email or password"
	msgGenerateTokenFail  = "Failed to generate token"

	msgContactFieldsRequired   = "Name, email, and message are required fields"
	msgInvalidEmailAddress     = "Please provide a valid email address"
	msgContactSubmitted        = "Thank you for your message! We will get back to you soon."
	msgContactSubmitFail       = "Failed to submit contact form. Please try again later."
	msgContactsRetrieveFail    = "Failed to retrieve contacts"
	msgInvalidContactID        = "Invalid contact ID"
	msgContactNotFound         = "Contact not found"
	msgInvalidStatusValue      = "Invalid status value"
	msgContactStatusUpdated    = "Contact status updated successfully"
	msgContactStatusUpdateFail = "Failed to update contact status"
	msgAnalyticsRetrieveFail   = "Failed to retrieve analytics"

	msgEmailRequired      = "Email is required"
	msgAlreadySubscribed  = "Email is already subscribed to our newsletter"
	msgSubscribed         = "Successfully subscribed to newsletter!"
	msgSubscribeFail      = "Failed to subscribe to newsletter"
	msgSubscribersFail    = "Failed to retrieve subscribers"
	msgUnsubscribed       = "Subscriber removed successfully"
	msgUnsubscribeFail    = "Failed to remove subscriber"
	msgSubscriberNotFound = "Subscriber not found"

	msgInvalidPropertyID   = "Invalid property ID"
	msgPropertyNotFound    = "Property not found"
	msgPropertiesFail      = "Failed to retrieve properties"
	msgPropertyCreateFail  = "Failed to create property"
	msgPropertyUpdateFail  = "Failed to update property"
	msgPropertyDeleteFail  = "Failed to delete property"
	msgPropertyCreated     = "Property created successfully"
	msgPropertyUpdated     = "Property updated successfully"
	msgPropertyDeleted     = "Property deleted successfully"
	msgImageUploadFail     = "Failed to upload images"
	msgInvalidMultipart    = "Invalid multipart form data"
	msgInvalidExistingImgs = "existingImages must be a JSON array of image URLs"

	msgInvalidTeamMemberID = "Invalid team member ID"
	msgTeamMemberNotFound  = "Team member not found"
	msgTeamFail            = "Failed to retrieve team members"
	msgTeamCreateFail      = "Failed to create team member"
	msgTeamUpdateFail      = "Failed to update team member"
	msgTeamDeleteFail      = "Failed to delete team member"
	msgTeamCreated         = "Team member created successfully"
	msgTeamUpdated         = "Team member updated successfully"
	msgTeamDeleted         = "Team member deleted successfully"

	msgInvalidPortfolioID  = "Invalid portfolio item ID"
	msgPortfolioNotFound   = "Portfolio item not found"
	msgPortfolioFail       = "Failed to retrieve portfolio items"
	msgPortfolioCreateFail = "Failed to create portfolio item"
	msgPortfolioUpdateFail = "Failed to update portfolio item"
	msgPortfolioDeleteFail = "Failed to delete portfolio item"
	msgPortfolioCreated    = "Portfolio item created successfully"
	msgPortfolioUpdated    = "Portfolio item updated successfully"
	msgPortfolioDeleted    = "Portfolio item deleted successfully"

	msgInvalidVisitID    = "Invalid visit ID"
	msgVisitNotFound     = "Visit request not found"
	msgVisitsFail        = "Failed to retrieve visit requests"
	msgVisitCreateFail   = "Failed to schedule visit"
	msgVisitUpdateFail   = "Failed to update visit request"
	msgVisitDeleteFail   = "Failed to delete visit request"
	msgVisitScheduled    = "Visit scheduled successfully! We will confirm shortly."
	msgVisitUpdated      = "Visit request updated successfully"
	msgVisitDeleted      = "Visit request deleted successfully"
	msgVisitPropNotFound = "Referenced property not found"

	msgAchievementsFail      = "Failed to retrieve achievements"
	msgAchievementUpdateFail = "Failed to update achievements"
	msgAchievementsUpdated   = "Achievements updated successfully"

	msgActivityFail = "Failed to retrieve activity"
	msgStatsFail    = "Failed to retrieve stats"
)
