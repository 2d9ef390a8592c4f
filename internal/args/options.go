package args

type CallbackOption func(string) error

var General struct {
	Verbose               []bool         `yaml:"-"                  short:"v" long:"verbose"            env:"BASECODEC_VERBOSITY"           description:"Show verbose debug information. Repeat for more detail."`
	ConfigurationFile     CallbackOption `yaml:"-"                  short:"c" long:"config"             env:"BASECODEC_CONFIG"              description:"Configuration file (yaml-formatted)" no-ini:"true"`
	ConfigurationFilePath string         `yaml:"-"`
	LogFile               *string        `yaml:"log-file"           short:"l" long:"log-file"           env:"BASECODEC_LOG_FILE"            description:"Log file (file will be appended). If not set, defaults to stderr." default:"-"`
	LogFormat             string         `yaml:"log-format"         short:"f" long:"log-format"         env:"BASECODEC_LOG_FORMAT"          description:"Log file format (json or text)." choice:"text" choice:"json" default:"text"`
	LogColor              string         `yaml:"log-color"          short:"C" long:"log-color"          env:"BASECODEC_LOG_COLOR"           description:"Should the log output be colored? true, false or auto" choice:"yes" choice:"no" choice:"true" choice:"false" choice:"auto" default:"auto"`
	LogFullTimestamp      bool           `yaml:"log-full-timestamp"           long:"log-full-timestamp" env:"BASECODEC_LOG_FULL_TIMESTAMP"  description:"Display full timestamp in logs."`
	LogReportCaller       bool           `yaml:"log-report-caller"            long:"log-report-caller"  env:"BASECODEC_LOG_REPORT_CALLER"   description:"If you wish to add the calling method as a field."`
	MaxInputSize          int64          `yaml:"max-input-size"               long:"max-input-size"     env:"BASECODEC_MAX_INPUT_SIZE"      description:"Largest input (in bytes) that will be loaded into memory." default:"1073741824"`
}
