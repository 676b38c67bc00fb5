package supabase

import (
	"github.com/supabase-community/supabase-go"
	"printshop-backend/internal/config"
)

type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

// NewClient builds a Supabase client authenticated with the service role key,
// which bypasses row level security on the KV table.
func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceRoleKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}

// KVStore returns the PostgREST-backed store over the configured table.
func (c *Client) KVStore() *KVStore {
	return NewKVStore(c.Supabase, c.Config.SupabaseKVTable)
}
