package roomsync

// Request and response bodies of the room store.

type createRequest[S any] struct {
	InitialState S `json:"initialState"`
}

type createResponse[S any] struct {
	RoomID    string `json:"roomId"`
	GameState S      `json:"gameState"`
}

type fetchResponse[S any] struct {
	ID        string `json:"id"`
	GameState S      `json:"gameState"`
}

type replaceRequest[S any] struct {
	GameState S `json:"gameState"`
}

type replaceResponse[S any] struct {
	GameState S `json:"gameState"`
}
