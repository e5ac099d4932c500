package core

// ExpectedColumns are the sheet columns the directory reads. A sheet may
// omit any of them; absent columns behave as empty values.
var ExpectedColumns = []string{
	FieldTitle,
	FieldURL,
	FieldDescription,
	FieldAuthor,
	FieldAffiliation,
	FieldTopicArea,
	FieldResourceType,
	FieldStandards,
}

// MissingColumns reports which expected columns do not appear in headers,
// in declared order. Header names must match exactly after trimming, which
// the decoder has already done.
func MissingColumns(headers []string) []string {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
	}

	var missing []string
	for _, col := range ExpectedColumns {
		if _, ok := present[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
