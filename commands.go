package gekko

// Commands is handed to modules and systems. It acts on the world the
// calling system runs against.
type Commands struct {
	app   *App
	world *World
}

func (cmd *Commands) World() *World {
	return cmd.world
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.world.AddResources(resources...)
	return cmd
}

func (cmd *Commands) InsertResource(resource any) *Commands {
	cmd.world.InsertResource(resource)
	return cmd
}

func (cmd *Commands) UseSystem(system systemScheduleBuilder) *Commands {
	cmd.app.UseSystem(system)
	return cmd
}

// Exit stops App.Run after the current frame.
func (cmd *Commands) Exit() {
	cmd.app.exit.Store(true)
}
