package domain

// ModuleRepository persists modules and the module list.
type ModuleRepository interface {
	// CountModuleFiles returns the number of module files present.
	CountModuleFiles() (int, error)

	// SaveModule writes the module, replacing any file with the same ID.
	// It returns the written path.
	SaveModule(module *Module) (string, error)

	// ListModuleFiles returns module file names in enumeration order.
	ListModuleFiles() ([]string, error)

	// LoadListEntry reads a module file and returns its list summary.
	LoadListEntry(fileName string) (ListEntry, error)

	// SaveList replaces the list file with entries. It returns the written path.
	SaveList(entries []ListEntry) (string, error)
}
