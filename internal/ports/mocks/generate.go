//go:generate mockgen -source=../watch_repository.go     -destination=./mock_watch_repository.go     -package=mocks
//go:generate mockgen -source=../response_cache.go       -destination=./mock_response_cache.go       -package=mocks
//go:generate mockgen -source=../validator.go            -destination=./mock_validator.go            -package=mocks
//go:generate mockgen -source=../logger.go               -destination=./mock_logger.go               -package=mocks
//go:generate mockgen -source=../background_worker.go    -destination=./mock_background_worker.go    -package=mocks
//go:generate mockgen -source=../catalog_read_service.go -destination=./mock_catalog_read_service.go -package=mocks

package mocks
