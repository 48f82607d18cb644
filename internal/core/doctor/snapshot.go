package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/colonyops/todo/internal/store/jsonfile"
)

// SnapshotCheck verifies the snapshot file can be loaded and looks for a
// temp file left behind by an interrupted save.
type SnapshotCheck struct {
	fs      afero.Fs
	path    string
	autofix bool
}

// NewSnapshotCheck creates a new snapshot check.
func NewSnapshotCheck(fs afero.Fs, path string, autofix bool) *SnapshotCheck {
	return &SnapshotCheck{fs: fs, path: path, autofix: autofix}
}

func (c *SnapshotCheck) Name() string {
	return "Snapshot"
}

func (c *SnapshotCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}
	result.Items = append(result.Items, c.checkFile())

	if item, ok := c.checkTemp(); ok {
		result.Items = append(result.Items, item)
	}

	return result
}

func (c *SnapshotCheck) checkFile() CheckItem {
	data, err := afero.ReadFile(c.fs, c.path)
	switch {
	case os.IsNotExist(err):
		return CheckItem{Label: c.path, Status: StatusPass, Detail: "not created yet"}
	case err != nil:
		return CheckItem{Label: c.path, Status: StatusFail, Detail: fmt.Sprintf("unreadable: %v", err)}
	}

	list, err := jsonfile.Decode(data)
	if err != nil {
		return CheckItem{
			Label:  c.path,
			Status: StatusWarn,
			Detail: fmt.Sprintf("will load as empty: %v", err),
		}
	}

	return CheckItem{
		Label:  c.path,
		Status: StatusPass,
		Detail: fmt.Sprintf("%d pending, %d done", len(list.Pending), len(list.Done)),
	}
}

func (c *SnapshotCheck) checkTemp() (CheckItem, bool) {
	tmp := c.path + ".tmp"

	exists, err := afero.Exists(c.fs, tmp)
	if err != nil || !exists {
		return CheckItem{}, false
	}

	if !c.autofix {
		return CheckItem{
			Label:   tmp,
			Status:  StatusWarn,
			Detail:  "leftover from an interrupted save",
			Fixable: true,
		}, true
	}

	if err := c.fs.Remove(tmp); err != nil {
		return CheckItem{Label: tmp, Status: StatusFail, Detail: fmt.Sprintf("remove failed: %v", err)}, true
	}

	return CheckItem{Label: tmp, Status: StatusPass, Detail: "removed"}, true
}
