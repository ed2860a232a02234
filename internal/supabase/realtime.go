package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
)

type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

// PublishEvent is a placeholder: the Go client has no direct Realtime publish,
// and row updates already trigger Realtime on subscribed channels. Kept so
// callers have a single seam if explicit publishing is added later.
func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	return nil
}

func (r *RealtimeClient) PublishProjectEvent(projectID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("project:%s", projectID.String())
	return r.PublishEvent(channel, event, payload)
}

func StatusChangedPayload(projectID uuid.UUID, status string, nftMinted, funded bool) map[string]interface{} {
	return map[string]interface{}{
		"project_id": projectID.String(),
		"status":     status,
		"nft_minted": nftMinted,
		"funded":     funded,
	}
}
