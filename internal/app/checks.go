package app

import (
	"context"
	"os"
	"strings"

	"github.com/msto63/bookfab/internal/voice"
	"github.com/msto63/bookfab/pkg/core/health"
	"github.com/msto63/bookfab/pkg/core/version"
)

// HealthChecks registers the self-checks run by the doctor command
func (a *App) HealthChecks() *health.Registry {
	r := health.NewRegistry(a.Config.General.Name, version.Display())

	r.RegisterFunc("catalog", func(ctx context.Context) health.CheckResult {
		if err := voice.Validate(a.Catalog); err != nil {
			return health.Unhealthy("%v", err)
		}
		return health.Healthy("%d voices from %s", len(a.Catalog), a.CatalogSource)
	})

	r.RegisterFunc("default-voice", func(ctx context.Context) health.CheckResult {
		v, ok := a.Workspace.SelectedVoice()
		if !ok {
			return health.Unhealthy("no default voice")
		}
		return health.Healthy("%s (%s)", v.Name, v.ID)
	})

	r.RegisterFunc("languages", func(ctx context.Context) health.CheckResult {
		var empty []string
		for _, lang := range a.Workspace.Languages() {
			if len(voice.Filter(a.Catalog, voice.Criteria{Language: lang})) == 0 {
				empty = append(empty, lang)
			}
		}
		if len(empty) > 0 {
			return health.Degraded("no voices for %s", strings.Join(empty, ", "))
		}
		return health.Healthy("%s", strings.Join(a.Workspace.Languages(), ", "))
	})

	r.RegisterFunc("avatars", func(ctx context.Context) health.CheckResult {
		placeholders := 0
		for _, v := range a.Catalog {
			if voice.AvatarURL(v) != v.Avatar {
				placeholders++
			}
		}
		if placeholders > 0 {
			return health.Degraded("%d of %d voices use placeholder avatars", placeholders, len(a.Catalog))
		}
		return health.Healthy("all %d avatars resolve", len(a.Catalog))
	})

	r.RegisterFunc("log-file", func(ctx context.Context) health.CheckResult {
		path := a.Config.General.LogFile
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return health.Unhealthy("%v", err)
		}
		f.Close()
		return health.Healthy("%s", path)
	})

	return r
}
