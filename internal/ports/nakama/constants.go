package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchNameTractor is the authoritative match handler name registered with Nakama.
	MatchNameTractor = "tractor_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame int64 = 1
	OpPlayCards int64 = 2

	// Server -> Client events
	OpPlayerJoined   int64 = 101
	OpPlayerLeft     int64 = 102
	OpGameStarted    int64 = 103
	OpHandDealt      int64 = 104 // send privately
	OpTrumpDeclared  int64 = 105
	OpCardPlayed     int64 = 106
	OpTrickEnded     int64 = 107
	OpGameEnded      int64 = 108
)
