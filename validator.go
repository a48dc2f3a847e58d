package jsonschema

// Validate checks instance against schema, appending every independent
// violation found to sink. It never stops at the first failure: the point
// of collecting into a sink rather than returning a single error is that
// callers can report everything wrong with an instance in one pass.
func Validate(schema *Schema, instance any, sink ErrorSink) {
	validateSchema(schema, instance, pointerPrefix, sink)
}

// validateSchema is the recursive dispatch at the heart of the package. It
// follows a fixed checklist order: classify the instance, apply "type"
// itself, apply the keywords specific to that classification, then the
// classification-independent keywords (const/enum/conditional/
// combinators) that apply to every instance regardless of its shape.
func validateSchema(s *Schema, instance any, ptr string, sink ErrorSink) {
	if s.IsBoolean() {
		if !*s.Boolean {
			sink.Add(NewValidationError(ptr, "false_schema", "schema is false; no value is valid here", nil))
		}
		return
	}

	tag := ClassifyValue(instance)
	evaluateType(s, tag, ptr, sink)

	switch tag {
	case TagInteger, TagNumber:
		evaluateNumeric(s, instance, ptr, sink)
	case TagString:
		evaluateString(s, instance, ptr, sink)
	case TagArray:
		arr := instance.([]any)
		evaluateItems(s, arr, ptr, sink)
		evaluateArrayLength(s, arr, ptr, sink)
		evaluateContains(s, arr, ptr, sink)
	case TagObject:
		obj := instance.(map[string]any)
		evaluateProperties(s, obj, ptr, sink)
		evaluatePatternProperties(s, obj, ptr, sink)
		evaluateAdditionalProperties(s, obj, ptr, sink)
		evaluateRequired(s, obj, ptr, sink)
		evaluateMinProperties(s, obj, ptr, sink)
		evaluateDependencies(s, obj, ptr, sink)
	}

	evaluateConst(s, instance, ptr, sink)
	evaluateEnum(s, instance, ptr, sink)
	evaluateConditional(s, instance, ptr, sink)
	evaluateAllOf(s, instance, ptr, sink)
	evaluateAnyOf(s, instance, ptr, sink)
	evaluateOneOf(s, instance, ptr, sink)
}
