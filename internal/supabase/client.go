package supabase

import (
	"fmt"
	"strings"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"poi-backend/internal/config"
)

// Client bundles the two Supabase surfaces the service talks to: GoTrue for
// identity and PostgREST for the row store. Row access uses the service key;
// auth calls go through the anon-key client like a browser would.
type Client struct {
	Supabase *supabase.Client
	Rest     *postgrest.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}

	baseURL := strings.TrimSuffix(cfg.SupabaseURL, "/")
	rest := postgrest.NewClient(baseURL+"/rest/v1", "", map[string]string{
		"apikey":        cfg.SupabaseServiceKey,
		"Authorization": "Bearer " + cfg.SupabaseServiceKey,
	})
	if rest.ClientError != nil {
		return nil, fmt.Errorf("failed to create postgrest client: %w", rest.ClientError)
	}

	return &Client{
		Supabase: client,
		Rest:     rest,
		Config:   cfg,
	}, nil
}
