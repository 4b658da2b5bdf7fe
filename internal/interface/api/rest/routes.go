package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// files
	RouteFiles       = RouteApiV1 + "/files"
	RouteFileUpload  = RouteFiles + "/upload/:route"
	RouteFileDelete  = RouteFiles + "/delete/:id"
	RouteFileByID    = RouteFiles + "/byid/:id"
	RouteFileByPath  = RouteFiles + "/bypath/*path"
	RouteFilesByType = RouteFiles + "/bytype/:type"
	RouteFileListing = RouteFiles + "/list/*selector"

	// type registry
	RouteFileTypes      = RouteApiV1 + "/file-types"
	RouteFileTypeByName = RouteFileTypes + "/:name"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
