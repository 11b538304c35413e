package movierental

// Exported for the external test package.
var WrapStoreError = wrapStoreError
