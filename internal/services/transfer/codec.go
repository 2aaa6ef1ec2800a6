package transfer

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/graretg02/Superbowl-app2/internal/model"
	"github.com/graretg02/Superbowl-app2/internal/services/persistence"
)

// Encode turns a board into an opaque ASCII code suitable for copy and paste.
// The code is the saved-state envelope as JSON, base64 encoded.
func Encode(state *model.GameState) (string, error) {
	snapshot := state.Clone()
	if snapshot.Participants == nil {
		snapshot.Participants = []model.Participant{}
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("encode board: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode rebuilds a board from a code produced by Encode. Any code that is not
// base64, not JSON, or lacks participants and grid fails with
// model.ErrInvalidTransferCode. Codes from other envelope versions are not migrated.
func Decode(code string) (*model.GameState, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(code))
	if err != nil {
		return nil, fmt.Errorf("%w: not base64", model.ErrInvalidTransferCode)
	}

	var shape map[string]json.RawMessage
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, fmt.Errorf("%w: not a board", model.ErrInvalidTransferCode)
	}
	for _, key := range []string{"participants", "grid"} {
		raw, ok := shape[key]
		if !ok || string(raw) == "null" {
			return nil, fmt.Errorf("%w: missing %s", model.ErrInvalidTransferCode, key)
		}
	}

	state, err := persistence.DecodeState(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidTransferCode, err)
	}
	return state, nil
}
