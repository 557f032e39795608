// Package all wires every built-in storage backend into the storage factory.
// It exists purely for side effects: blank-importing it runs each backend's
// init, which registers its factory with the storage package.
package all

import (
	_ "erpload/internal/storage/postgres"
	_ "erpload/internal/storage/sqlite"
)
