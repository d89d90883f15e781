// resolve-tests is a tool that turns requested test case IDs into test selectors.
//
// resolve-tests reads a mapping file, keeps the rows whose testCaseId was
// requested, drops rows whose file does not exist on disk, writes the
// surviving selectors one per line to the output file and echoes them to
// stdout.
//
// Example:
//
//	resolve-tests --mapping testmap.json --caseIds "101, 102" --out build/selectors.txt
//
// With testmap.json:
//
//	{
//	  "mappings": [
//	    {"testCaseId": 101, "path": "tests/e2e/test_checkout_flow.py::test_browse"},
//	    {"testCaseId": 102, "path": "tests/e2e/test_login.py"},
//	    {"testCaseId": 103, "path": "tests/e2e/test_search.py"}
//	  ]
//	}
//
// Output:
//
//	=== Resolved Selectors ===
//	tests/e2e/test_checkout_flow.py::test_browse
//	tests/e2e/test_login.py
//	==========================
//
// Only the part of a selector before the first "::" is checked for
// existence. Warnings and errors are written to stderr, and every fatal
// condition has its own exit code (see --help).
package main
