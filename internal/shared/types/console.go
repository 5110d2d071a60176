package types

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Println(a ...interface{})

	LogDebug(format string, a ...interface{})
	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	// Confirm asks the operator to type expected and reports whether they did.
	Confirm(message, expected string) (bool, error)

	CreateTable() TableInterface
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}
