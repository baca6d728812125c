package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ivergara/skym/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for skym resources.
	uriScheme = "skym://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Effective matching and picker settings",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "engines",
		Name:        "engines",
		Description: "Fuzzy alignment engines that can be configured",
		MIMEType:    "application/json",
	}, s.handleEnginesResource)
}

type settingsInfo struct {
	Engine    string `json:"engine"`
	Limit     int    `json:"limit"`
	Workers   int    `json:"workers"`
	Prompt    string `json:"prompt"`
	AltScreen bool   `json:"alt_screen"`
}

// handleSettingsResource returns the effective settings, or the defaults
// when no settings service is wired.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	settings := domain.DefaultAppSettings()
	if s.ports.Settings != nil {
		current, err := s.ports.Settings.Get()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		settings = *current
	}

	return jsonResource(req.Params.URI, settingsInfo{
		Engine:    settings.Match.Engine.String(),
		Limit:     settings.Match.Limit,
		Workers:   settings.Match.Workers,
		Prompt:    settings.UI.Prompt,
		AltScreen: settings.UI.AltScreen,
	})
}

type engineInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// handleEnginesResource lists the supported engines.
func (s *Server) handleEnginesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	engines := domain.AllEngines()
	infos := make([]engineInfo, len(engines))
	for i, e := range engines {
		infos[i] = engineInfo{Name: e.String(), Description: e.Description()}
	}
	return jsonResource(req.Params.URI, infos)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
