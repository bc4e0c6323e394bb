package report

import "fmt"

// Recommendations derives advisory lines from detector counts. The rule table
// is fixed and ordered; each rule emits at most one line, so the output is
// deterministic for a given hit map. Keys absent from the map read as zero.
func Recommendations(hits map[string]*Hit) []string {
	count := func(key string) int {
		if hit, ok := hits[key]; ok {
			return hit.Count
		}
		return 0
	}

	var lines []string

	// Injection style.
	fieldSites := count("di_field")
	constructorSites := count("di_constructor")
	switch {
	case fieldSites > 0 && constructorSites >= fieldSites:
		lines = append(lines, fmt.Sprintf(
			"Constructor injection already dominates (%d constructor sites vs %d field sites); migrate the remaining field-injected members.",
			constructorSites, fieldSites))
	case fieldSites > 0:
		lines = append(lines, fmt.Sprintf(
			"Field injection appears %d times; adopt constructor injection to make dependencies explicit and classes testable.",
			fieldSites))
	}

	// Output discipline.
	stdoutSites := count("system_out")
	loggerSites := count("slf4j_logger")
	switch {
	case stdoutSites > 0 && loggerSites == 0:
		lines = append(lines, fmt.Sprintf(
			"System.out/err is the only output mechanism (%d sites); introduce SLF4J with a logging backend.",
			stdoutSites))
	case stdoutSites > 0:
		lines = append(lines, fmt.Sprintf(
			"System.out/err usage persists (%d sites) even though SLF4J is present; route the remaining output through the logger.",
			stdoutSites))
	}

	// Error handling on the REST surface.
	if count("rest_controller") > 0 && count("exception_handler") == 0 {
		lines = append(lines,
			"REST controllers exist without a global @ControllerAdvice; add one so error responses share a single shape.")
	}

	// Async executor hygiene.
	if futures := count("completable_future"); futures > 0 && count("executor_service") == 0 {
		lines = append(lines, fmt.Sprintf(
			"CompletableFuture is used (%d sites) without an explicit ExecutorService; async work is defaulting to the common pool.",
			futures))
	}

	// HTTP client consolidation.
	restTemplateSites := count("rest_template")
	webClientSites := count("web_client")
	switch {
	case restTemplateSites > 0 && webClientSites > 0:
		lines = append(lines, fmt.Sprintf(
			"Both RestTemplate (%d sites) and WebClient (%d sites) are in use; finish consolidating on WebClient.",
			restTemplateSites, webClientSites))
	case restTemplateSites > 0:
		lines = append(lines,
			"RestTemplate is in maintenance mode; plan the migration to WebClient.")
	}

	// Persistence layering.
	if count("jdbc_template") > 0 && count("spring_data_repo") > 0 {
		lines = append(lines,
			"Spring Data repositories and JdbcTemplate are mixed; document which layer owns which queries.")
	}

	// Test coverage signal.
	if count("di_component") > 0 && count("junit_test") == 0 {
		lines = append(lines,
			"Spring components are present but no JUnit tests were detected; start with slice tests for the web layer.")
	}

	// Data carrier style.
	if count("lombok") > 0 && count("records") > 0 {
		lines = append(lines,
			"Lombok and Java records coexist; prefer records for new immutable data carriers.")
	}

	return lines
}
