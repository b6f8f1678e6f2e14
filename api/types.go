package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler     projectHandler
	technologyHandler  technologyHandler
	integrationHandler integrationHandler
	updateHandler      updateHandler
	metadataHandler    metadataHandler
	githubHandler      githubHandler
	adminHandler       adminHandler
	authHandler        authHandler
}
