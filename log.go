// Copyright 2023 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package sfgeom

import (
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("sfgeom")
