package worklog

import (
	"fmt"

	"github.com/harrisonrobin/timectl/pkg/value"
)

// GetPath returns the value at a dotted key such as "settings.date_format".
func (w *Worklog) GetPath(key string) (value.Value, error) {
	doc, err := w.store.Load()
	if err != nil {
		return value.Value{}, err
	}
	v, ok := doc.Root().Lookup(value.SplitPath(key))
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return v, nil
}

// SetPath coerces text (see value.Coerce) and stores it at key, creating
// intermediate mappings as needed. A scalar or sequence sitting where an
// intermediate mapping is needed gets replaced. Nothing stops a caller from
// overwriting a project record this way; later project operations will
// report ErrCorruptProjects.
func (w *Worklog) SetPath(key, text string) (value.Value, error) {
	doc, err := w.store.Load()
	if err != nil {
		return value.Value{}, err
	}
	v := value.Coerce(text)
	doc.Root().Assign(value.SplitPath(key), v)

	if err := w.store.Save(doc); err != nil {
		return value.Value{}, err
	}
	w.logger.Debug("set config value", "key", key, "kind", v.Kind().String())
	return v, nil
}

// UnsetPath deletes exactly the final key of the path. If any segment is
// missing the document is left untouched and ErrNotFound is returned.
func (w *Worklog) UnsetPath(key string) error {
	doc, err := w.store.Load()
	if err != nil {
		return err
	}
	if !doc.Root().Remove(value.SplitPath(key)) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err := w.store.Save(doc); err != nil {
		return err
	}
	w.logger.Debug("unset config value", "key", key)
	return nil
}
