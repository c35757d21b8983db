package consultation

// SystemInstruction frames every consultation turn.
const SystemInstruction = "You are LegalAssistAI, a helpful assistant providing preliminary legal information. " +
	"You should provide general legal information, but make it clear you're not giving legal advice or " +
	"creating an attorney-client relationship. For complex situations, recommend consulting with a licensed attorney. " +
	"Focus on being informative, professional, and helpful while staying within these boundaries."

const analysisInstruction = "You are a legal document analyzer. Review the provided document text and extract key information. " +
	"Provide a summary, key points, and suggested actions. Respond with JSON in this format: " +
	`{ "summary": string, "keyPoints": string[], "suggestedActions": string[] }`

const recommendationInstruction = "You are a legal consultant helping clients find appropriate legal representation. " +
	"Based on the description of a legal issue, identify the most relevant legal specializations needed " +
	"and suggest important questions the client should ask potential lawyers. " +
	`Respond with JSON in this format: { "specializations": string[], "relevantQuestions": string[] }`

// Canned replies served when generation fails.
const (
	FailureReply = "I apologize, but I'm experiencing technical difficulties. Please try again later."
	EmptyReply   = "I apologize, but I couldn't process your request at this time."
)

const (
	noSummary             = "No summary available"
	analysisFailedSummary = "Error analyzing document. Please try again later."
	contactSupportAction  = "Contact support if this issue persists."
	generalPractice       = "General Practice"
	experienceQuestion    = "What is your experience with cases like mine?"
)
