package gekko

// PipelinedRenderingModule runs the render stages on their own goroutine.
// Frame N renders while frame N+1's main stages run; extraction waits for
// frame N's render to finish before it touches the render world.
type PipelinedRenderingModule struct{}

func (PipelinedRenderingModule) Install(app *App, cmd *Commands) {
	if app.pipeline != nil {
		return
	}
	app.pipeline = newRenderPipeline(app)
	app.Logger().Infof("Pipelined rendering enabled")
}

type renderPipeline struct {
	toRender   chan *World
	fromRender chan *World
	done       chan struct{}
}

func newRenderPipeline(app *App) *renderPipeline {
	p := &renderPipeline{
		toRender:   make(chan *World),
		fromRender: make(chan *World, 1),
		done:       make(chan struct{}),
	}
	// The render world starts out idle.
	p.fromRender <- app.render

	go func() {
		defer close(p.done)
		for world := range p.toRender {
			app.callStages(world, app.renderStages[1:])
			p.fromRender <- world
		}
	}()
	return p
}

// acquire blocks until the previous frame's render stages are done.
func (p *renderPipeline) acquire() *World {
	return <-p.fromRender
}

func (p *renderPipeline) submit(world *World) {
	p.toRender <- world
}

func (p *renderPipeline) stop() {
	<-p.fromRender
	close(p.toRender)
	<-p.done
}
