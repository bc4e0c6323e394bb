package catalog

// groupTitles maps group identifiers to report headings.
var groupTitles = map[string]string{
	"di":            "Frameworks & Dependency Injection",
	"testing":       "Testing",
	"async":         "Async & Concurrency",
	"rest":          "REST & Error Handling",
	"observability": "Observability",
	"build":         "Build & Quality",
	"language":      "Language Features",
	"internal":      "Internal Libraries",
	"security":      "Security",
	"rpc":           "RPC & HTTP Clients",
	"persistence":   "Persistence",
}

// builtinDetectors is the embedded detector table. Patterns are line-oriented
// heuristics for Java/Kotlin codebases and their build/config files; they are
// compiled and validated by Load before any scanning starts.
var builtinDetectors = []DetectorSpec{
	// Dependency injection styles.
	{Group: "di", Key: "di_field", Pattern: `@(Autowired|Inject)\s+(private|protected)\b`},
	{Group: "di", Key: "di_constructor", Pattern: `public\s+[A-Z]\w*\s*\(`},
	{Group: "di", Key: "di_component", Pattern: `@(Component|Service|Repository)\b`},
	{Group: "di", Key: "di_configuration", Pattern: `@(Configuration|Bean)\b`},
	{Group: "di", Key: "di_value", Pattern: `@Value\s*\(`},

	// Test frameworks and helpers.
	{Group: "testing", Key: "junit_test", Pattern: `@(Test|ParameterizedTest|RepeatedTest)\b`},
	{Group: "testing", Key: "junit_lifecycle", Pattern: `@(BeforeEach|AfterEach|BeforeAll|AfterAll)\b`},
	{Group: "testing", Key: "mockito", Pattern: `@(Mock|MockBean|Spy|InjectMocks)\b|Mockito\.`},
	{Group: "testing", Key: "assertj", Pattern: `assertThat\s*\(`},
	{Group: "testing", Key: "spring_slice_test", Pattern: `@(SpringBootTest|WebMvcTest|DataJpaTest)\b`},
	{Group: "testing", Key: "testcontainers", Pattern: `@Testcontainers\b|GenericContainer|PostgreSQLContainer`},

	// Asynchrony and scheduling.
	{Group: "async", Key: "completable_future", Pattern: `CompletableFuture`},
	{Group: "async", Key: "executor_service", Pattern: `ExecutorService|Executors\.`},
	{Group: "async", Key: "async_annotation", Pattern: `@Async\b`},
	{Group: "async", Key: "scheduled_task", Pattern: `@Scheduled\b`},
	{Group: "async", Key: "reactor", Pattern: `\b(Mono|Flux)[<.]`},
	{Group: "async", Key: "virtual_threads", Pattern: `newVirtualThreadPerTaskExecutor|Thread\.ofVirtual`},

	// REST surface and error handling.
	{Group: "rest", Key: "rest_controller", Pattern: `@RestController\b`},
	{Group: "rest", Key: "request_mapping", Pattern: `@(Get|Post|Put|Delete|Patch|Request)Mapping\b`},
	{Group: "rest", Key: "exception_handler", Pattern: `@(ExceptionHandler|ControllerAdvice|RestControllerAdvice)\b`},
	{Group: "rest", Key: "response_entity", Pattern: `ResponseEntity[<.]`},
	{Group: "rest", Key: "custom_exception", Pattern: `extends\s+(RuntimeException|Exception)\b`},
	{Group: "rest", Key: "problem_detail", Pattern: `ProblemDetail\b`},

	// Logging, metrics, tracing.
	{Group: "observability", Key: "slf4j_logger", Pattern: `LoggerFactory\.getLogger|@Slf4j\b`},
	{Group: "observability", Key: "log_calls", Pattern: `\blog(ger)?\.(trace|debug|info|warn|error)\s*\(`},
	{Group: "observability", Key: "system_out", Pattern: `System\.(out|err)\.print`},
	{Group: "observability", Key: "micrometer", Pattern: `MeterRegistry|Counter\.builder|Timer\.builder|@Timed\b`},
	{Group: "observability", Key: "tracing", Pattern: `@(WithSpan|NewSpan)\b|OpenTelemetry`},
	{Group: "observability", Key: "health_endpoint", Pattern: `HealthIndicator|/actuator`},

	// Build tooling, pulled from gradle/maven files as much as from sources.
	{Group: "build", Key: "spring_boot_plugin", Pattern: `org\.springframework\.boot`},
	{Group: "build", Key: "spotless", Pattern: `spotless`},
	{Group: "build", Key: "checkstyle", Pattern: `checkstyle`},
	{Group: "build", Key: "jacoco", Pattern: `jacoco`},
	{Group: "build", Key: "errorprone", Pattern: `errorprone|error-prone`},
	{Group: "build", Key: "lombok", Pattern: `@(Data|Builder|Getter|Setter|RequiredArgsConstructor|AllArgsConstructor|NoArgsConstructor)\b|lombok`},

	// Modern language feature adoption.
	{Group: "language", Key: "optional_type", Pattern: `Optional[<.]`},
	{Group: "language", Key: "stream_api", Pattern: `\.stream\(\)|Collectors\.`},
	{Group: "language", Key: "records", Pattern: `\brecord\s+[A-Z]\w*\s*\(`},
	{Group: "language", Key: "var_inference", Pattern: `\bvar\s+\w+\s*=`},
	{Group: "language", Key: "sealed_types", Pattern: `\bsealed\s+(interface|class)\b`},
	{Group: "language", Key: "switch_arrow", Pattern: `case\s+[^:]*->`},
	{Group: "language", Key: "text_blocks", Pattern: `"""`},
	{Group: "language", Key: "instanceof_binding", Pattern: `instanceof\s+[A-Z]\w*\s+\w+`},

	// Company-internal and repackaged dependencies.
	{Group: "internal", Key: "internal_imports", Pattern: `import\s+(com|org|net)\.[\w.]*\.internal\.`},
	{Group: "internal", Key: "shaded_imports", Pattern: `import\s+[\w.]*\.(shaded|repackaged)\.`},
	{Group: "internal", Key: "incubator_modules", Pattern: `jdk\.incubator`},

	// Security plumbing.
	{Group: "security", Key: "method_security", Pattern: `@(PreAuthorize|PostAuthorize|Secured|RolesAllowed)\b`},
	{Group: "security", Key: "security_filter_chain", Pattern: `SecurityFilterChain`},
	{Group: "security", Key: "jwt_handling", Pattern: `JwtDecoder|JwtEncoder|io\.jsonwebtoken|\bJWT\b`},
	{Group: "security", Key: "password_hashing", Pattern: `PasswordEncoder|BCrypt`},
	{Group: "security", Key: "config_credentials", Pattern: `(?i)\b(password|secret|apikey|api[-_]key)\s*[:=]`},

	// Remote calls.
	{Group: "rpc", Key: "grpc", Pattern: `@GrpcService\b|StreamObserver<|ManagedChannel`},
	{Group: "rpc", Key: "feign_client", Pattern: `@FeignClient\b`},
	{Group: "rpc", Key: "rest_template", Pattern: `\bRestTemplate\b`},
	{Group: "rpc", Key: "web_client", Pattern: `\bWebClient\b`},
	{Group: "rpc", Key: "java_http_client", Pattern: `HttpClient\.newBuilder|HttpRequest\.newBuilder`},

	// Data access.
	{Group: "persistence", Key: "jpa_entity", Pattern: `@(Entity|Table|MappedSuperclass)\b`},
	{Group: "persistence", Key: "jpa_mapping", Pattern: `@(Id|Column|GeneratedValue|JoinColumn|OneToMany|ManyToOne|ManyToMany)\b`},
	{Group: "persistence", Key: "spring_data_repo", Pattern: `extends\s+(Jpa|Crud|ListCrud|Paging\w*|Reactive\w*)Repository`},
	{Group: "persistence", Key: "jdbc_template", Pattern: `JdbcTemplate|NamedParameterJdbcTemplate`},
	{Group: "persistence", Key: "transactional", Pattern: `@Transactional\b`},
	{Group: "persistence", Key: "query_annotation", Pattern: `@Query\s*\(`},
	{Group: "persistence", Key: "migrations", Pattern: `(?i)flyway|liquibase`},
}

// builtinAntiPatterns is the embedded anti-pattern table. Each note is the
// remediation line shown next to every match in the report.
var builtinAntiPatterns = []AntiPatternSpec{
	{
		Key:     "field_injection",
		Pattern: `@Autowired\s+(private|protected)\b`,
		Note:    "Prefer constructor injection; field injection hides dependencies and prevents final fields.",
	},
	{
		Key:     "system_out",
		Pattern: `System\.(out|err)\.print`,
		Note:    "Use the SLF4J logger instead of writing to System.out/System.err.",
	},
	{
		Key:     "print_stack_trace",
		Pattern: `\.printStackTrace\s*\(`,
		Note:    "Route exceptions through the logger; printStackTrace bypasses log routing and loses context.",
	},
	{
		Key:     "empty_catch",
		Pattern: `catch\s*\([^)]*\)\s*\{\s*\}`,
		Note:    "Empty catch blocks swallow failures; handle the exception or rethrow it.",
	},
	{
		Key:     "raw_thread",
		Pattern: `new\s+Thread\s*\(`,
		Note:    "Create threads through a shared ExecutorService, not with new Thread.",
	},
	{
		Key:     "thread_sleep",
		Pattern: `Thread\.sleep\s*\(`,
		Note:    "Thread.sleep usually papers over missing synchronization; in tests prefer awaitility.",
	},
	{
		Key:     "simple_date_format",
		Pattern: `new\s+SimpleDateFormat\s*\(`,
		Note:    "SimpleDateFormat is not thread-safe; use java.time.DateTimeFormatter.",
	},
	{
		Key:     "sql_concat",
		Pattern: `(?i)"(select|insert into|update|delete from)[^"]*"\s*\+`,
		Note:    "SQL assembled by string concatenation invites injection; use parameterized queries.",
	},
	{
		Key:     "select_star",
		Pattern: `(?i)select\s+\*\s+from`,
		Note:    "SELECT * couples code to schema width; project the columns you need.",
	},
	{
		Key:     "suppress_warnings",
		Pattern: `@SuppressWarnings\b`,
		Note:    "Unexplained @SuppressWarnings rot; justify the suppression or fix the warning.",
	},
	{
		Key:     "junit4_imports",
		Pattern: `import\s+org\.junit\.Test\b|import\s+junit\.framework`,
		Note:    "JUnit 4 import; new tests belong on JUnit 5 (org.junit.jupiter).",
	},
	{
		Key:     "shared_random",
		Pattern: `new\s+Random\s*\(\s*\)`,
		Note:    "Prefer ThreadLocalRandom, or SecureRandom where unpredictability matters.",
	},
}
