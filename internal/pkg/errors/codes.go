package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_INPUT",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"No drivable route between the given locations",
		http.StatusUnprocessableEntity,
	)

	ErrUnreachableRoute = New(
		"UNREACHABLE_WITH_VEHICLE_RANGE",
		"No fuel stop sequence connects start and destination within the vehicle range",
		http.StatusUnprocessableEntity,
	)

	ErrUpstreamTimeout = New(
		"UPSTREAM_TIMEOUT",
		"Upstream provider did not respond in time",
		http.StatusGatewayTimeout,
	)

	ErrUpstreamUnavailable = New(
		"UPSTREAM_UNAVAILABLE",
		"Upstream provider request failed",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
