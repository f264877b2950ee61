package wsx

// schemaStatements creates the tables the viewer expects, including the ones
// this tool never fills.
var schemaStatements = []string{
	`CREATE TABLE 'db_version' ( 'version' VARCHAR NOT NULL, 'feature' VARCHAR NOT NULL )`,
	`CREATE TABLE 'device' ( 'id' INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
		'device_type_id' INTEGER NOT NULL REFERENCES device_type (id),
		'serial_number' VARCHAR,
		'name' VARCHAR,
		'address' VARCHAR )`,
	`CREATE TABLE 'device_setting' ( 'id' INTEGER PRIMARY KEY NOT NULL,
		'name' TEXT,
		'device_id' INTEGER NOT NULL REFERENCES device (id),
		'setting_id' INTEGER NOT NULL REFERENCES setting (id),
		'purpose_id' INTEGER NOT NULL REFERENCES device_setting_purpose (id) )`,
	`CREATE TABLE 'l_device_setting_purpose' ( 'id' INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
		'name' VARCHAR NOT NULL )`,
	`CREATE TABLE 'l_device_type' ( 'id' INTEGER PRIMARY KEY NOT NULL,
		'name' VARCHAR NOT NULL,
		'amplitude_offset' FLOAT NOT NULL,
		'amplitude_resolution' FLOAT NOT NULL,
		'max_rssi' INTEGER NOT NULL )`,
	`CREATE TABLE 'l_sweep_type' ( 'id' INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
		'name' VARCHAR NOT NULL )`,
	`CREATE TABLE 'network' ( 'id' INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
		'mac' VARCHAR NOT NULL,
		'mode' VARCHAR,
		'alias' VARCHAR )`,
	`CREATE TABLE 'network_config' ( 'id' INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
		'network_id' INTEGER NOT NULL REFERENCES network (id),
		'ssid' VARCHAR NOT NULL,
		'primary_channel' INTEGER NOT NULL,
		'secondary_channel' INTEGER NOT NULL,
		'secondary_channel_valid' INTEGER NOT NULL,
		'channel_width' INTEGER NOT NULL,
		'phy_type' INTEGER NOT NULL,
		'supported_phy_types' VARCHAR NOT NULL,
		'supported_rates' VARCHAR NOT NULL,
		'encryption' INTEGER NOT NULL,
		'authentication' INTEGER NOT NULL,
		'information_elements' BLOB )`,
	`CREATE TABLE 'network_scan' ( 'id' INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
		'network_config_id' INTEGER NOT NULL REFERENCES network_config (id),
		'rssi' INTEGER NOT NULL,
		'milliseconds_since_epoch' INTEGER NOT NULL )`,
	`CREATE TABLE 'notes' ( 'id' INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
		'device_setting_id' INTEGER NOT NULL REFERENCES device_setting(id),
		'name' VARCHAR NOT NULL,
		'details' VARCHAR NOT NULL,
		'milliseconds_since_epoch' INTEGER NOT NULL,
		'color' INTEGER NOT NULL,
		'image' BLOB )`,
	`CREATE TABLE 'setting' ( 'id' INTEGER PRIMARY KEY NOT NULL,
		'name' TEXT,
		'starting_frequency_khz' INTEGER NOT NULL,
		'frequency_resolution_khz' INTEGER NOT NULL,
		'readings_per_sweep' INTEGER NOT NULL )`,
	`CREATE TABLE 'sweep' ( 'id' INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
		'device_setting_id' INTEGER NOT NULL REFERENCES device_setting (id),
		'sweep_type_id' INTEGER NOT NULL REFERENCES l_sweep_type (id),
		'milliseconds_since_epoch' INTEGER NOT NULL,
		'sweep_data' BLOB NOT NULL )`,
}

// Fixed rows describing a single-device, single-setting capture.
const (
	insertDBVersion = `INSERT INTO db_version (version, feature) VALUES ('1.4', 'WiSpy'), ('1.0', 'Notes'), ('1.5', 'Wifi')`
	insertDevice    = `INSERT INTO device (device_type_id, serial_number) VALUES (?, ?)`
	insertSetting   = `INSERT INTO device_setting (id, device_id, setting_id, purpose_id) VALUES (0, 1, 1, 1)`
	insertPurpose   = `INSERT INTO l_device_setting_purpose (id, name) VALUES (1, 'Display')`
	insertType      = `INSERT INTO l_device_type (id, name, amplitude_offset, amplitude_resolution, max_rssi) VALUES (?, ?, ?, ?, ?)`
	insertBand      = `INSERT INTO setting (id, name, starting_frequency_khz, frequency_resolution_khz, readings_per_sweep) VALUES (1, ?, ?, ?, ?)`
	insertSweep     = `INSERT INTO sweep (device_setting_id, sweep_type_id, milliseconds_since_epoch, sweep_data) VALUES (0, 1, ?, ?)`
)

const (
	// BandName and BandStartKHz describe the only setting written.
	BandName     = "Full 2.4 GHz Band"
	BandStartKHz = 2400000

	amplitudeOffset     = -134.0
	amplitudeResolution = 0.5
	maxRSSI             = 255
)
