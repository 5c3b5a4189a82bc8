package constants

// Centralized constants for headers and OpenAI integration. Environment
// keys live on the config.Env struct tags.
const (
	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"

	ContentTypeJSON = "application/json"

	// Authorization prefix
	BearerPrefix = "Bearer "

	// OpenAI API endpoints and base URL
	OpenAIBaseURL             = "https://api.openai.com"
	OpenAIChatCompletionsPath = "/v1/chat/completions"

	// OpenAI model names and typical parameters
	OpenAIChatModel           = "gpt-5-nano"
	OpenAIMaxCompletionTokens = 3100

	// Session / Cookie names
	CookieSessionName = "m_session"

	// Context key set by the auth middleware
	CtxUserEmail = "userEmail"
)

// Routes used by the backend router
const (
	RouteAPIPrefix  = "/api"
	RouteVersion    = "/version"
	RouteCharacters = "/characters"
	RouteCreatures  = "/creatures"
	RouteBattles    = "/battles"
	RouteBattleByID = "/battles/:battleID"
)

// History listing bounds
const (
	HistoryDefaultLimit = 20
	HistoryMaxLimit     = 100
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyDetails = "details"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidLimit           = "limit must be a positive integer"
	ErrCombatantNotFound      = "Combatant not found"
	ErrBattleNotFound         = "Battle not found"
	ErrNotBattleOwner         = "Battle belongs to another user"
	ErrFailedFetchCharacters  = "Failed to fetch characters"
	ErrFailedFetchCreatures   = "Failed to fetch creatures"
	ErrFailedFetchBattles     = "Failed to fetch battles"
	ErrFailedRunBattle        = "Failed to run battle"
	ErrSelfBattle             = "A combatant cannot fight itself"
	ErrAuthRequired           = "Authentication required"
	ErrInvalidSession         = "Invalid session"
	ErrOpenAIKeyNotConfigured = "OpenAI API key not configured"
)

// Logging field names
const (
	LogFieldBattleID   = "battle_id"
	LogFieldBattleType = "battle_type"
	LogFieldMatchup    = "matchup"
	LogFieldWinner     = "winner"
	LogFieldRounds     = "rounds"
	LogFieldSeed       = "seed"
	LogFieldSource     = "source"
	LogFieldKey        = "key"
	LogFieldAddr       = "addr"
	LogFieldUser       = "user"
	LogFieldCount      = "count"
	LogFieldPath       = "path"
)
