package gekko

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"sync/atomic"
)

type systemFn any

// MainWorld gives Extract stage systems read access to the main world.
type MainWorld struct {
	*World
}

type App struct {
	main         *World
	render       *World
	modules      []Module
	stages       []Stage
	renderStages []Stage
	systems      map[string][]systemFn
	extractors   []extractor
	logger       Logger
	frame        uint64
	exit         atomic.Bool
	pipeline     *renderPipeline
}

func NewApp() *App {
	app := &App{
		main:         NewWorld("main"),
		render:       NewWorld("render"),
		stages:       defaultMainStages(),
		renderStages: defaultRenderStages(),
		systems:      make(map[string][]systemFn),
	}
	for _, s := range app.stages {
		app.systems[s.Name] = make([]systemFn, 0)
	}
	for _, s := range app.renderStages {
		app.systems[s.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) MainWorld() *World {
	return app.main
}

// RenderWorld returns the render world. With pipelined rendering enabled it
// must only be touched between frames.
func (app *App) RenderWorld() *World {
	return app.render
}

// Frame returns the number of completed Update calls.
func (app *App) Frame() uint64 {
	return app.frame
}

func (app *App) Commands() *Commands {
	return &Commands{
		app:   app,
		world: app.main,
	}
}

func (app *App) UseModules(modules ...Module) *App {
	for _, module := range modules {
		app.modules = append(app.modules, module)
		module.Install(app, app.Commands())
	}
	return app
}

// Update runs one frame: the main stages, the extraction sync point and the
// render stages. With pipelined rendering the render stages of this frame
// run in the background and overlap the next frame's main stages.
func (app *App) Update() {
	app.callStages(app.main, app.stages)

	if app.pipeline != nil {
		render := app.pipeline.acquire()
		app.extract(render)
		app.pipeline.submit(render)
	} else {
		app.extract(app.render)
		app.callStages(app.render, app.renderStages[1:])
	}

	app.frame++
}

// Run updates until ctx is done or a system calls Commands.Exit.
func (app *App) Run(ctx context.Context) error {
	defer app.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		app.Update()

		if app.exit.Load() {
			app.Logger().Infof("Exit requested after frame %d", app.frame)
			return nil
		}
	}
}

// Close waits for any in-flight render work and stops the render goroutine.
func (app *App) Close() {
	if app.pipeline != nil {
		app.pipeline.stop()
		app.pipeline = nil
	}
}

func (app *App) extract(render *World) {
	for _, e := range app.extractors {
		e.run(app.main, render)
	}

	mainWorld := reflect.ValueOf(&MainWorld{World: app.main})
	for _, system := range app.systems[Extract.Name] {
		app.callSystem(render, system, mainWorld)
	}
}

func (app *App) callStages(world *World, stages []Stage) {
	for _, stage := range stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(world, system)
		}
	}
}

var (
	typeOfCommands = reflect.TypeOf(Commands{})
	typeOfLogger   = reflect.TypeOf((*Logger)(nil)).Elem()
)

func (app *App) callSystem(world *World, system systemFn, extras ...reflect.Value) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			app.unresolved(systemType, systemValue, argType)
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app, world: world})
		} else if underlyingType == typeOfLogger {
			logger := app.Logger()
			args[i] = reflect.ValueOf(&logger)
		} else if resource, argIsResource := world.resource(underlyingType); argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else if extra, ok := findExtra(argType, extras); ok {
			args[i] = extra
		} else {
			app.unresolved(systemType, systemValue, argType)
		}
	}
	systemValue.Call(args)
}

func findExtra(argType reflect.Type, extras []reflect.Value) (reflect.Value, bool) {
	for _, e := range extras {
		if e.Type() == argType {
			return e, true
		}
	}
	return reflect.Value{}, false
}

func (app *App) unresolved(systemType reflect.Type, systemValue reflect.Value, argType reflect.Type) {
	msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
		runtime.FuncForPC(systemValue.Pointer()).Name(),
		fmt.Sprint(systemType),
		fmt.Sprint(argType),
	)
	app.Logger().Errorf("%s", msg)
	panic(msg)
}
