package gekko

import (
	"reflect"
)

var ambientLightTypeName = reflect.TypeOf((*AmbientLight)(nil)).Elem().String()

// PbrModule installs the scene ambient light.
//
// The main world gets Ambient if set. Otherwise it gets the config file at
// ConfigPath, or the default, with GEKKO_AMBIENT_* overrides applied on top. The render world always starts at the default
// and is only written by extraction afterwards.
type PbrModule struct {
	Ambient    *AmbientLight
	ConfigPath string
}

func (mod PbrModule) Install(app *App, cmd *Commands) {
	ambient := mod.initialAmbient(app)
	app.main.AddResources(&ambient)

	renderAmbient := NewAmbientLight()
	app.render.AddResources(&renderAmbient, &AmbientUniformContainer{})

	app.UseModules(ExtractResource[AmbientLight]())

	if err := ensureTypeRegistry(app).Register(AmbientLightRegistration()); err != nil {
		app.Logger().Warnf("PbrModule: %v", err)
	}

	app.UseSystem(System(prepareAmbientUniform).InStage(Prepare))
	app.Logger().Infof("Ambient light: color=%s brightness=%g", ambient.Color, ambient.Brightness)
}

func (mod PbrModule) initialAmbient(app *App) AmbientLight {
	if mod.Ambient != nil {
		return mod.Ambient.Clone()
	}

	var cfg AmbientLightConfig
	var err error
	if mod.ConfigPath != "" {
		cfg, err = LoadAmbientLightConfig(mod.ConfigPath)
	} else {
		err = ApplyEnv(&cfg)
	}
	if err != nil {
		app.Logger().Warnf("PbrModule: %v; using default ambient light", err)
		return NewAmbientLight()
	}
	ambient, err := cfg.AmbientLight()
	if err != nil {
		app.Logger().Warnf("PbrModule: %v; using default ambient light", err)
		return NewAmbientLight()
	}
	return ambient
}

// prepareAmbientUniform turns the extracted ambient light into the sanitized
// GPU-facing term.
func prepareAmbientUniform(ambient *AmbientLight, uniform *AmbientUniformContainer, stats *ExtractionStats) {
	uniform.Update(gpuAmbientFrom(*ambient, stats.Count(ambientLightTypeName)))
}
