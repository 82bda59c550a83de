package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ictam/agmsite/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for site resources.
	uriScheme = "agmsite://"

	speakersURI = uriScheme + "speakers"
	sponsorsURI = uriScheme + "sponsors"
)

// registerResources registers the directory resources when a directory
// service is available.
func (s *Server) registerResources() {
	if s.ports.Directory == nil {
		return
	}

	s.server.AddResource(&mcp.Resource{
		URI:         speakersURI,
		Name:        "speakers",
		Description: "Every conference speaker with their title and topic",
		MIMEType:    "application/json",
	}, s.handleSpeakersResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: speakersURI + "/{slug}",
		Name:        "speaker",
		Description: "Profile and biography of one speaker",
		MIMEType:    "text/markdown",
	}, s.handleSpeakerResource)

	s.server.AddResource(&mcp.Resource{
		URI:         sponsorsURI,
		Name:        "sponsors",
		Description: "Every sponsor with its tier",
		MIMEType:    "application/json",
	}, s.handleSponsorsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: sponsorsURI + "/{id}",
		Name:        "sponsor",
		Description: "Details of one sponsor",
		MIMEType:    "text/markdown",
	}, s.handleSponsorResource)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
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

func markdownResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     text,
		}},
	}
}

func (s *Server) handleSpeakersResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	speakers, err := s.ports.Directory.Speakers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing speakers: %w", err)
	}

	type speakerInfo struct {
		Name  string `json:"name"`
		Title string `json:"title"`
		Topic string `json:"topic,omitempty"`
		URI   string `json:"uri"`
	}
	infos := make([]speakerInfo, len(speakers))
	for i, sp := range speakers {
		infos[i] = speakerInfo{
			Name:  sp.Name,
			Title: sp.Title,
			Topic: sp.Topic,
			URI:   speakersURI + "/" + domain.Slugify(sp.Name),
		}
	}
	return jsonResult(req.Params.URI, infos)
}

func (s *Server) handleSpeakerResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	slug := extractID(req.Params.URI, speakersURI+"/")
	if slug == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	sp, err := s.ports.Directory.SpeakerBySlug(ctx, slug)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting speaker: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", sp.Name)
	if sp.Title != "" {
		fmt.Fprintf(&b, "%s\n\n", sp.Title)
	}
	if sp.Topic != "" {
		fmt.Fprintf(&b, "**Topic:** %s\n\n", sp.Topic)
	}
	if sp.Biography != "" {
		fmt.Fprintf(&b, "%s\n", sp.Biography)
	}
	return markdownResult(req.Params.URI, b.String()), nil
}

func (s *Server) handleSponsorsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	sponsors, err := s.ports.Directory.Sponsors(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sponsors: %w", err)
	}

	type sponsorInfo struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Tier     string `json:"tier"`
		Category string `json:"category,omitempty"`
		URI      string `json:"uri"`
	}
	infos := make([]sponsorInfo, len(sponsors))
	for i, sp := range sponsors {
		id := sp.ID
		if id == "" {
			id = domain.Slugify(sp.Name)
		}
		infos[i] = sponsorInfo{
			ID:       sp.ID,
			Name:     sp.Name,
			Tier:     string(sp.Tier),
			Category: sp.Category,
			URI:      sponsorsURI + "/" + id,
		}
	}
	return jsonResult(req.Params.URI, infos)
}

func (s *Server) handleSponsorResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractID(req.Params.URI, sponsorsURI+"/")
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	sp, err := s.ports.Directory.SponsorByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting sponsor: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", sp.DisplayName())
	fmt.Fprintf(&b, "%s\n\n", sp.Tier.Label())
	if sp.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", sp.Description)
	}
	if sp.About != "" {
		fmt.Fprintf(&b, "%s\n\n", sp.About)
	}
	for _, svc := range sp.Services {
		fmt.Fprintf(&b, "- %s\n", svc)
	}
	if sp.Website != "" {
		fmt.Fprintf(&b, "\nWebsite: %s\n", sp.Website)
	}
	return markdownResult(req.Params.URI, b.String()), nil
}

// extractID returns the single path segment after prefix, or "".
func extractID(uri, prefix string) string {
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
