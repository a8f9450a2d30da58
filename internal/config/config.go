package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"hospitalflow/internal/notification"
)

type Config struct {
	LogLevel            string
	LogMirror           bool
	PatientChannel      notification.Channel
	StaffChannel        notification.Channel
	StaffAddress        string
	DemoRandomPatients  int
	DemoRandomDoctors   int
	DemoSeed            uint64
	DemoDurationMinutes int
}

// Load reads HOSPITALFLOW_* variables, after merging an optional .env file
// from the working directory.
func Load() (Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix("HOSPITALFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.mirror", false)
	v.SetDefault("notification.patient_channel", string(notification.ChannelSMS))
	v.SetDefault("notification.staff_channel", string(notification.ChannelEmail))
	v.SetDefault("notification.staff_address", "staff@hospital.example")
	v.SetDefault("demo.random_patients", 0)
	v.SetDefault("demo.random_doctors", 0)
	v.SetDefault("demo.seed", 42)
	v.SetDefault("demo.duration_minutes", 30)

	_ = v.BindEnv("log.level", "HOSPITALFLOW_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.mirror", "HOSPITALFLOW_LOG_MIRROR")
	_ = v.BindEnv("notification.patient_channel", "HOSPITALFLOW_NOTIFICATION_PATIENT_CHANNEL")
	_ = v.BindEnv("notification.staff_channel", "HOSPITALFLOW_NOTIFICATION_STAFF_CHANNEL")
	_ = v.BindEnv("notification.staff_address", "HOSPITALFLOW_NOTIFICATION_STAFF_ADDRESS")
	_ = v.BindEnv("demo.random_patients", "HOSPITALFLOW_DEMO_RANDOM_PATIENTS")
	_ = v.BindEnv("demo.random_doctors", "HOSPITALFLOW_DEMO_RANDOM_DOCTORS")
	_ = v.BindEnv("demo.seed", "HOSPITALFLOW_DEMO_SEED")
	_ = v.BindEnv("demo.duration_minutes", "HOSPITALFLOW_DEMO_DURATION_MINUTES")

	patientChannel, err := notification.ParseChannel(v.GetString("notification.patient_channel"))
	if err != nil {
		return Config{}, err
	}
	staffChannel, err := notification.ParseChannel(v.GetString("notification.staff_channel"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		LogLevel:            v.GetString("log.level"),
		LogMirror:           v.GetBool("log.mirror"),
		PatientChannel:      patientChannel,
		StaffChannel:        staffChannel,
		StaffAddress:        strings.TrimSpace(v.GetString("notification.staff_address")),
		DemoRandomPatients:  v.GetInt("demo.random_patients"),
		DemoRandomDoctors:   v.GetInt("demo.random_doctors"),
		DemoSeed:            v.GetUint64("demo.seed"),
		DemoDurationMinutes: v.GetInt("demo.duration_minutes"),
	}, nil
}
