package notify

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-sub-keeper/models"
)

// CurrentStatusKey is the data key carrying a JSON-encoded
// [models.SubscriptionStatusList].
const CurrentStatusKey = "currentStatus"

// EncodeStatusPayload builds the data map sent to devices.
func EncodeStatusPayload(list models.SubscriptionStatusList) (map[string]string, error) {
	if list.Subscriptions == nil {
		list.Subscriptions = []models.SubscriptionStatus{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("marshal subscription list: %w", err)
	}
	return map[string]string{CurrentStatusKey: string(raw)}, nil
}
