package framework

// BindingKey names a value that a class fixture makes available to the tests of a class.
type BindingKey string

// ClassScope holds the values shared by all tests of one test class. A new scope is created for
// every class, so nothing bound for one class is visible once the next class starts.
type ClassScope struct {
	name     string
	bindings map[BindingKey]interface{}
}

// NewClassScope creates an empty scope. The runner creates one per class; it is exported for code
// that drives fixtures directly.
func NewClassScope(name string) *ClassScope {
	return &ClassScope{name: name, bindings: make(map[BindingKey]interface{})}
}

// Name returns the name of the class.
func (s *ClassScope) Name() string {
	return s.name
}

// Bind associates a value with a key for the rest of the class.
func (s *ClassScope) Bind(key BindingKey, value interface{}) {
	s.bindings[key] = value
}

// Unbind removes a value.
func (s *ClassScope) Unbind(key BindingKey) {
	delete(s.bindings, key)
}

// Value returns the value bound to the key, or nil.
func (s *ClassScope) Value(key BindingKey) interface{} {
	if s == nil {
		return nil
	}
	return s.bindings[key]
}

// ClassFixture prepares shared state before the first test of a class and releases it after the
// last one. TearDown is called even if SetUp returned an error or a test panicked.
type ClassFixture interface {
	SetUp(scope *ClassScope) error
	TearDown(scope *ClassScope) error
}

// ClassFixtureFactory creates a fixture for one class. Factories registered with Options are
// applied to every class automatically.
type ClassFixtureFactory func() ClassFixture
