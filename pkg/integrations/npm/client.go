package npm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/readmerator/pkg/cache"
	"github.com/matzehuels/readmerator/pkg/integrations"
)

type PackageInfo struct {
	Name        string
	Version     string
	Readme      string
	Description string
	HomePage    string
}

type Client struct {
	*integrations.Client
	baseURL string
}

func NewClient(backend cache.Cache, cacheTTL time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(backend, "npm:", cacheTTL, nil),
		baseURL: "https://registry.npmjs.org",
	}
}

// FetchPackage retrieves metadata for an npm package, scoped names included
// (e.g. "@types/node"). Names are lowercased but otherwise left alone: npm
// treats underscores and hyphens as distinct.
func (c *Client) FetchPackage(ctx context.Context, pkg string, refresh bool) (*PackageInfo, error) {
	pkg = strings.ToLower(strings.TrimSpace(pkg))
	key := pkg

	var info PackageInfo
	err := c.Cached(ctx, key, refresh, &info, func() error {
		return c.fetch(ctx, pkg, &info)
	})
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) fetch(ctx context.Context, pkg string, info *PackageInfo) error {
	var data registryResponse
	if err := c.Get(ctx, c.baseURL+"/"+pkg, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return fmt.Errorf("%w: npm package %s", err, pkg)
		}
		return err
	}

	*info = PackageInfo{
		Name:        data.Name,
		Version:     data.DistTags.Latest,
		Readme:      data.Readme,
		Description: data.Description,
		HomePage:    data.HomePage,
	}
	return nil
}

type registryResponse struct {
	Name        string   `json:"name"`
	DistTags    distTags `json:"dist-tags"`
	Readme      string   `json:"readme"`
	Description string   `json:"description"`
	HomePage    string   `json:"homepage"`
}

type distTags struct {
	Latest string `json:"latest"`
}
